package future

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/stretchr/testify/require"
)

var (
	ErrTest = errors.New("test error")
)

func TestFuture(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(1)
		f.Complete(2)
		f.Complete(3)
	}()

	v, err := f.Wait()
	req.NoError(err)
	req.Equal(1, v)
}

func TestFromFunc(t *testing.T) {
	req := require.New(t)

	f := FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})

	r, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(42, r)

	f = FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 0, ErrTest
	})

	_, err = f.Get(context.Background())
	req.ErrorIs(err, ErrTest)
}

func TestFromFuncPanic(t *testing.T) {
	req := require.New(t)

	_, err := FromFunc(func() (int, error) {
		panic("exploded")
	}).Wait()
	req.EqualError(err, "exploded")
	req.True(rop.IsCaptured(err))

	_, err = FromFunc(func() (int, error) {
		runtime.Goexit()
		return 0, nil
	}).Wait()
	req.ErrorIs(err, rop.ErrGoexit)
}

func TestComplete(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			f.Complete(42)
		}()
	}

	v, err := f.Wait()
	req.NoError(err)
	req.Equal(42, v)
}

func TestFail(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			f.Fail(ErrTest)
		}()
	}

	_, err := f.Wait()
	req.ErrorIs(err, ErrTest)
}

func TestManyReaders(t *testing.T) {
	req := require.New(t)

	f := New[string]()
	wg := sync.WaitGroup{}
	got := make([]string, 10)

	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _ := f.Wait()
			got[i] = v
		}(i)
	}

	f.Complete("shared")
	wg.Wait()

	for _, v := range got {
		req.Equal("shared", v)
	}
}

func TestSettledConstructors(t *testing.T) {
	req := require.New(t)

	v, err := Resolved("ok").Wait()
	req.NoError(err)
	req.Equal("ok", v)

	_, err = Rejected[string](ErrTest).Wait()
	req.ErrorIs(err, ErrTest)

	select {
	case <-Resolved(1).Done():
	default:
		req.Fail("resolved future should already be done")
	}
}

func TestCancelOnGet(t *testing.T) {
	req := require.New(t)

	f := New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := f.Get(ctx)
	req.ErrorIs(err, context.Canceled)

	// the future itself is still pending and can be completed later
	f.Complete(7)
	v, err := f.Wait()
	req.NoError(err)
	req.Equal(7, v)
}
