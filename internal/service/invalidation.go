package service

import (
	"context"

	"github.com/diasutsman/open-music-api/pkg/cache"
	"github.com/diasutsman/open-music-api/pkg/logger"
)

// Invalidator 缓存失效协调器
// 每种变更对应一组精确的缓存键; 失效失败只记日志不影响写入结果,
// 残留的脏数据最多存活一个TTL
type Invalidator struct {
	resolver *cache.Resolver
	log      logger.Logger
}

// NewInvalidator 创建失效协调器
func NewInvalidator(resolver *cache.Resolver, log logger.Logger) *Invalidator {
	return &Invalidator{resolver: resolver, log: log}
}

func (i *Invalidator) purge(ctx context.Context, keys ...string) {
	if err := i.resolver.Invalidate(ctx, keys...); err != nil {
		i.log.Warn("cache invalidation failed",
			logger.Any("keys", keys),
			logger.Error(err),
		)
	}
}

// AlbumChanged 专辑增删改及封面更新
func (i *Invalidator) AlbumChanged(ctx context.Context, albumID string) {
	i.purge(ctx, cache.AlbumKey(albumID))
}

// SongChanged 歌曲增删改
// 专辑内歌曲列表不单独缓存, 无需联动失效专辑键以外的键
func (i *Invalidator) SongChanged(ctx context.Context, songID string) {
	i.purge(ctx, cache.SongKey(songID))
}

// PlaylistAdded 新建歌单, 只影响属主的歌单列表
func (i *Invalidator) PlaylistAdded(ctx context.Context, ownerID string) {
	i.purge(ctx, cache.PlaylistsKey(ownerID))
}

// PlaylistDeleted 删除歌单
// 级联删除发生在存储层, 这里统一清掉以该歌单ID为键的所有缓存
func (i *Invalidator) PlaylistDeleted(ctx context.Context, ownerID, playlistID string) {
	i.purge(ctx,
		cache.PlaylistsKey(ownerID),
		cache.PlaylistSongsKey(playlistID),
		cache.PlaylistActivitiesKey(playlistID),
	)
}

// MembershipChanged 歌单增删歌曲
// 成员变化不改歌单元数据, 属主的歌单列表键不动
func (i *Invalidator) MembershipChanged(ctx context.Context, playlistID string) {
	i.purge(ctx, cache.PlaylistSongsKey(playlistID))
}

// CollaborationChanged 增删协作者
// 变化的是协作者自己可见的歌单集合, 失效协作者的列表键; 属主列表键不动
func (i *Invalidator) CollaborationChanged(ctx context.Context, collaboratorID string) {
	i.purge(ctx, cache.PlaylistsKey(collaboratorID))
}

// LikeToggled 点赞开关
func (i *Invalidator) LikeToggled(ctx context.Context, albumID string) {
	i.purge(ctx, cache.AlbumLikesKey(albumID))
}

// ActivityRecorded 写入活动日志
func (i *Invalidator) ActivityRecorded(ctx context.Context, playlistID string) {
	i.purge(ctx, cache.PlaylistActivitiesKey(playlistID))
}
