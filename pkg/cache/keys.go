package cache

import "fmt"

// Key naming conventions for catalog cache entries.
// Keys are {entity}:{id}; listing keys are keyed by the principal or
// parent whose view they represent.

// AlbumKey returns the key for a single album (with its songs).
// Example: album:album-123
func AlbumKey(albumID string) string {
	return fmt.Sprintf("album:%s", albumID)
}

// SongKey returns the key for a single song.
// Example: song:song-123
func SongKey(songID string) string {
	return fmt.Sprintf("song:%s", songID)
}

// PlaylistsKey returns the key for a user's playlist listing. The
// listing covers playlists the user owns plus playlists shared with
// them, so it is keyed by the principal, not by any playlist.
// Example: playlists:user-123
func PlaylistsKey(userID string) string {
	return fmt.Sprintf("playlists:%s", userID)
}

// PlaylistSongsKey returns the key for a playlist's song listing.
// Example: playlistsongs:playlist-123
func PlaylistSongsKey(playlistID string) string {
	return fmt.Sprintf("playlistsongs:%s", playlistID)
}

// PlaylistActivitiesKey returns the key for a playlist's activity log.
// Example: playlist-activities:playlist-123
func PlaylistActivitiesKey(playlistID string) string {
	return fmt.Sprintf("playlist-activities:%s", playlistID)
}

// AlbumLikesKey returns the key for an album's like count.
// Example: likes:album-123
func AlbumLikesKey(albumID string) string {
	return fmt.Sprintf("likes:%s", albumID)
}
