package service

import (
	"context"
	"log"

	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
)

// ============================================
// Media Capacity Enforcer
// ============================================

// CapacityEnforcer keeps the number of active portfolio items per media kind
// under a soft cap by evicting the oldest excess item after a write. It is
// deliberately best-effort: nothing here ever fails the triggering request,
// and concurrent writes can leave the store transiently over limit.
type CapacityEnforcer struct {
	repo        repository.PortfolioRepository
	media       MediaDeleter
	broadcaster Broadcaster
	videoLimit  int
	imageLimit  int
}

func NewCapacityEnforcer(repo repository.PortfolioRepository, media MediaDeleter, broadcaster Broadcaster, videoLimit, imageLimit int) *CapacityEnforcer {
	return &CapacityEnforcer{
		repo:        repo,
		media:       media,
		broadcaster: broadcaster,
		videoLimit:  videoLimit,
		imageLimit:  imageLimit,
	}
}

func (e *CapacityEnforcer) limitFor(mediaType string) int {
	if mediaType == repository.MediaTypeVideo {
		return e.videoLimit
	}
	return e.imageLimit
}

// Enforce runs one check-and-evict pass for the given media kind after a
// write. excludeID is the just-written item, which is never the eviction
// candidate. A single pass evicts at most one item and does not re-check.
func (e *CapacityEnforcer) Enforce(ctx context.Context, mediaType, excludeID string) {
	limit := e.limitFor(mediaType)

	count, err := e.repo.CountActiveByType(ctx, mediaType)
	if err != nil {
		log.Printf("[Capacity] Error counting active %s items: %v", mediaType, err)
		return
	}
	if count <= limit {
		return
	}

	oldest, err := e.repo.FindOldestActiveByType(ctx, mediaType, excludeID)
	if err != nil {
		log.Printf("[Capacity] Error finding oldest %s item: %v", mediaType, err)
		return
	}
	if oldest == nil {
		return
	}

	e.evict(ctx, oldest, limit)
}

// evict removes the external binary best-effort, then the record. The record
// goes last so a failure in between orphans a remote object, never a record
// pointing at a deleted one.
func (e *CapacityEnforcer) evict(ctx context.Context, item *repository.PortfolioItem, limit int) {
	if item.MediaID != "" && e.media != nil {
		if err := e.media.Delete(ctx, item.MediaID, item.Type); err != nil {
			log.Printf("[Capacity] Failed to remove media resource for oldest %s %s: %v", item.Type, item.ID, err)
		}
	}

	if err := e.repo.Delete(ctx, item.ID); err != nil {
		log.Printf("[Capacity] Failed to delete oldest %s %s: %v", item.Type, item.ID, err)
		return
	}

	log.Printf("[Capacity] Removed oldest %s to enforce limit of %d: %s", item.Type, limit, item.ID)

	if e.broadcaster != nil {
		e.broadcaster.PortfolioEvicted(item)
	}
}

// Sweep re-checks both media kinds and evicts until each is within its limit.
// It only runs from the optional scheduler; the write path never loops.
func (e *CapacityEnforcer) Sweep(ctx context.Context) {
	for _, mediaType := range []string{repository.MediaTypeVideo, repository.MediaTypeImage} {
		limit := e.limitFor(mediaType)
		for {
			count, err := e.repo.CountActiveByType(ctx, mediaType)
			if err != nil {
				log.Printf("[Capacity] Sweep: error counting %s items: %v", mediaType, err)
				break
			}
			if count <= limit {
				break
			}

			oldest, err := e.repo.FindOldestActiveByType(ctx, mediaType, "")
			if err != nil || oldest == nil {
				if err != nil {
					log.Printf("[Capacity] Sweep: error finding oldest %s item: %v", mediaType, err)
				}
				break
			}
			e.evict(ctx, oldest, limit)
		}
	}
}
