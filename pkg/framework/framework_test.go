package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil, nil).Aggregate())
	e1 := errors.New("e1")
	require.Equal(t, "e1", errs.Add(e1).Aggregate().Error())
	err := errs.Add(nil, errors.New("e2")).Aggregate()
	require.Equal(t, "Multiple errors:\ne1\ne2", err.Error())
	require.ErrorIs(t, err, e1)
}

func TestRunnerWaitsAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunnerWith(ctx)
	started := make(chan struct{}, 2)
	blockUntilCanceled := RunFunc(func(ctx context.Context) error {
		started <- struct{}{}
		<-ctx.Done()
		return ctx.Err()
	})
	r.Go(NamedRun("a", blockUntilCanceled), blockUntilCanceled)
	<-started
	<-started
	cancel()
	require.NoError(t, r.Wait())
}

func TestRunnerCancel(t *testing.T) {
	r := NewRunner()
	r.Go(RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	r.Cancel()
	require.NoError(t, r.Wait())
}

func TestRunnerCollectsErrors(t *testing.T) {
	errBoom := errors.New("boom")
	r := NewRunner().Go(
		RunFunc(func(context.Context) error { return errBoom }),
		RunFunc(func(context.Context) error { return nil }),
	)
	err := r.Wait()
	require.Error(t, err)
	require.Equal(t, []error{errBoom}, err.(*AggregatedError).Errors)
}

func TestNamedRun(t *testing.T) {
	r := NamedRun("telemetry", RunFunc(func(context.Context) error { return nil }))
	require.Equal(t, "telemetry", r.(Named).Name())
	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("run timeout")
	}
}
