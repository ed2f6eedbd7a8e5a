package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ifedan-ed/plugnmeet-manager/internal/manager/store"
)

// readList loads a JSON array stored under a single list key. A missing key
// reads as an empty list. Read-modify-write over these lists is not atomic
// across concurrent writers: last writer wins.
func readList[T any](ctx context.Context, st store.Store, key string) ([]T, error) {
	raw, err := st.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func writeList[T any](ctx context.Context, st store.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return st.Put(ctx, key, raw)
}
