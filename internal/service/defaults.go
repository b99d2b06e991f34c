package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/stylencms/internal/content"
	"github.com/stylencms/internal/store"
)

// errEmpty lets a loader report that storage answered but held nothing for
// the kind, which selects the default without logging a failure.
var errEmpty = errors.New("no stored records")

// loadOrDefault 先从存储读取，失败或为空时回退到默认值。
// 读取失败只记录 WARN 日志，不向调用方暴露。第二个返回值为 false 表示既没有
// 存储记录也没有默认值。
func loadOrDefault[T any](ctx context.Context, kind content.Kind, load func(context.Context) (T, error), fallback func() (T, bool)) (T, bool) {
	value, err := load(ctx)
	if err == nil {
		return value, true
	}
	if !errors.Is(err, errEmpty) && !errors.Is(err, store.ErrNotFound) {
		slog.WarnContext(ctx, "read failed, serving defaults", "kind", kind, "err", err)
	}
	return fallback()
}

func always[T any](fn func() T) func() (T, bool) {
	return func() (T, bool) {
		return fn(), true
	}
}
