package store

import (
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"github.com/hexavax/hexavax-engine/consts"
	"github.com/hexavax/hexavax-engine/schema"
)

// KV is a minimal string key-value store for persisting filter toggles
// between sessions.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// LoadFilters reads the persisted filter toggles. A missing or malformed
// entry yields the all-off defaults so a corrupted store never blocks
// startup.
func LoadFilters(kv KV) schema.Filters {
	var filters schema.Filters
	raw, ok := kv.Get(consts.FiltersStorageKey)
	if !ok {
		return filters
	}
	if err := sonic.UnmarshalString(raw, &filters); err != nil {
		log.WithField("prefix", loadLogPrefix).WithError(err).Warn("persisted filters unreadable, using defaults")
		return schema.Filters{}
	}
	return filters
}

// SaveFilters persists the filter toggles.
func SaveFilters(kv KV, filters schema.Filters) error {
	raw, err := sonic.MarshalString(filters)
	if err != nil {
		return err
	}
	return kv.Set(consts.FiltersStorageKey, raw)
}
