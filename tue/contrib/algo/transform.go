// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package algo applies tue value functions across slices.
//
// Every element is computed independently from its input, so the parallel
// variants produce exactly the same output as the sequential ones.
//
//	algo.Transform(points, out, func(p tue.FVec3) tue.FVec3 {
//	    return transform.Rotate(q, p)
//	})
package algo

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-tue/tue"
	"github.com/ajroetker/go-tue/tue/contrib/workerpool"
)

// minParallel is the element count below which ParallelTransform stays on
// the calling goroutine.
const minParallel = 1024

// Transform stores fn(src[i]) in dst[i] for the first min(len(src),
// len(dst)) elements.
func Transform[S, D any](src []S, dst []D, fn func(S) D) {
	n := min(len(src), len(dst))
	for i := range n {
		dst[i] = fn(src[i])
	}
}

// ParallelTransform is Transform spread over pool. Batches are sized from
// the register width so that each one covers a whole number of
// register-sized groups of vectors. A nil pool runs sequentially.
func ParallelTransform[S, D any](pool *workerpool.Pool, src []S, dst []D, fn func(S) D) {
	n := min(len(src), len(dst))
	if pool == nil || n < minParallel {
		Transform(src[:n], dst[:n], fn)
		return
	}
	pool.ParallelForBatched(n, BatchSize(), func(start, end int) {
		Transform(src[start:end], dst[start:end], fn)
	})
}

// TransformContext is ParallelTransform for callers without a pool. It runs
// at most workers batches at once (no limit if workers <= 0) and stops
// handing out batches once ctx is done, returning ctx.Err(). Batches that
// already started run to completion, so on error dst is partially written.
func TransformContext[S, D any](ctx context.Context, src []S, dst []D, fn func(S) D, workers int) error {
	n := min(len(src), len(dst))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	bs := BatchSize()
	for start := 0; start < n; start += bs {
		if gctx.Err() != nil {
			break
		}
		end := min(start+bs, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			Transform(src[start:end], dst[start:end], fn)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	// gctx is always done once Wait returns; only the caller's ctx counts.
	return ctx.Err()
}

// BatchSize returns the number of elements ParallelTransform hands to a
// worker at a time.
func BatchSize() int {
	return 64 * tue.VecsPerRegister[float32]()
}

// TransformPoints multiplies every point by m.
func TransformPoints[T tue.Scalar, C, R tue.Dim](pool *workerpool.Pool, m tue.Mat[T, C, R], src []tue.Vec[T, C], dst []tue.Vec[T, R]) {
	ParallelTransform(pool, src, dst, func(v tue.Vec[T, C]) tue.Vec[T, R] {
		return tue.MulVec(m, v)
	})
}

// Reduce folds fn over src starting from init, left to right.
func Reduce[S, A any](src []S, init A, fn func(A, S) A) A {
	acc := init
	for _, s := range src {
		acc = fn(acc, s)
	}
	return acc
}

// Sum returns the componentwise sum of vs.
func Sum[T tue.Scalar, N tue.Dim](vs []tue.Vec[T, N]) tue.Vec[T, N] {
	return Reduce(vs, tue.Zero[T, N](), tue.Vec[T, N].Add)
}
