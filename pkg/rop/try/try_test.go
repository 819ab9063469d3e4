package try

import (
	"encoding/json"
	"errors"
	"regexp"
	"runtime"
	"testing"
	"time"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/future"
	"github.com/stretchr/testify/require"
)

var ErrTest = errors.New("test error")

type failure struct {
	Kind string
	Raw  any
}

func classify(raised any) failure {
	if err, ok := raised.(error); ok {
		return failure{Kind: "error", Raw: err}
	}
	return failure{Kind: "panic", Raw: raised}
}

func TestFnJSON(t *testing.T) {
	req := require.New(t)

	parse := func(doc string) rop.Of[map[string]any] {
		return Fn(func() (map[string]any, error) {
			var v map[string]any
			err := json.Unmarshal([]byte(doc), &v)
			return v, err
		})
	}

	r := parse(`{"name":"John","age":30}`)
	req.True(r.IsSuccess())
	req.Equal(map[string]any{"name": "John", "age": float64(30)}, r.Result())

	r = parse("{invalid}")
	req.True(r.IsFailure())
	var syntaxErr *json.SyntaxError
	req.ErrorAs(r.Err(), &syntaxErr)
	req.False(rop.IsCaptured(r.Err()))
}

func TestFnPanics(t *testing.T) {
	req := require.New(t)

	r := Fn(func() (int, error) {
		panic("plain string")
	})
	req.True(r.IsFailure())
	req.EqualError(r.Err(), "plain string")
	req.True(rop.IsCaptured(r.Err()))

	r = Fn(func() (int, error) {
		panic(ErrTest)
	})
	req.ErrorIs(r.Err(), ErrTest)
	req.False(rop.IsCaptured(r.Err()))

	r = Fn(func() (int, error) {
		var m map[string]int
		m["x"] = 1
		return 0, nil
	})
	var rtErr runtime.Error
	req.ErrorAs(r.Err(), &rtErr)
}

func TestFnTypedNilError(t *testing.T) {
	req := require.New(t)

	r := Fn(func() (int, error) {
		var err *json.SyntaxError
		return 5, err
	})
	req.True(r.IsSuccess())
	req.Equal(5, r.Result())
}

func TestValue(t *testing.T) {
	req := require.New(t)

	r := Value(func() *regexp.Regexp { return regexp.MustCompile(`^a+$`) })
	req.True(r.IsSuccess())
	req.True(r.Result().MatchString("aaa"))

	r = Value(func() *regexp.Regexp { return regexp.MustCompile(`(`) })
	req.True(r.IsFailure())
	req.Contains(r.Err().Error(), "regexp")
}

func TestFnAs(t *testing.T) {
	req := require.New(t)

	r := FnAs(func() (int, error) { return 1, nil }, classify)
	req.Equal(rop.Success[int, failure](1), r)

	r = FnAs(func() (int, error) { return 0, ErrTest }, classify)
	req.Equal(failure{Kind: "error", Raw: ErrTest}, r.Err())

	r = FnAs(func() (int, error) { panic(404) }, classify)
	req.Equal(failure{Kind: "panic", Raw: 404}, r.Err())
}

func TestAsync(t *testing.T) {
	req := require.New(t)

	ch := Async(func() (map[string]string, error) {
		time.Sleep(10 * time.Millisecond)
		return map[string]string{"data": "success"}, nil
	})

	r := <-ch
	req.True(r.IsSuccess())
	req.Equal(map[string]string{"data": "success"}, r.Result())

	_, open := <-ch
	req.False(open)
}

func TestAsyncFailures(t *testing.T) {
	req := require.New(t)

	r := <-Async(func() (string, error) {
		panic("HTTP error: 404")
	})
	req.True(r.IsFailure())
	req.Equal("HTTP error: 404", r.Err().Error())

	r = <-Async(func() (string, error) {
		return "", ErrTest
	})
	req.ErrorIs(r.Err(), ErrTest)

	r = <-Async(func() (string, error) {
		runtime.Goexit()
		return "unreachable", nil
	})
	req.ErrorIs(r.Err(), rop.ErrGoexit)
}

func TestAsyncDoesNotBlockCaller(t *testing.T) {
	req := require.New(t)

	release := make(chan struct{})
	ch := Async(func() (int, error) {
		<-release
		return 1, nil
	})

	select {
	case <-ch:
		req.Fail("result delivered before the computation finished")
	default:
	}

	close(release)
	req.Equal(1, (<-ch).Unwrap())
}

func TestAsyncAs(t *testing.T) {
	req := require.New(t)

	r := <-AsyncAs(func() (int, error) { panic("x") }, classify)
	req.Equal(failure{Kind: "panic", Raw: "x"}, r.Err())
}

func TestAwait(t *testing.T) {
	req := require.New(t)

	f := future.New[string]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete("done")
	}()
	req.Equal(rop.Success[string, error]("done"), Await(f))

	req.ErrorIs(Await(future.Rejected[string](ErrTest)).Err(), ErrTest)
}

func TestFuture(t *testing.T) {
	req := require.New(t)

	r := <-Future(func() *future.Future[int] {
		return future.FromFunc(func() (int, error) { return 42, nil })
	})
	req.Equal(42, r.Unwrap())

	r = <-Future(func() *future.Future[int] {
		return future.FromFunc(func() (int, error) { panic("HTTP error: 404") })
	})
	req.EqualError(r.Err(), "HTTP error: 404")

	r = <-Future(func() *future.Future[int] {
		panic("could not start")
	})
	req.EqualError(r.Err(), "could not start")
}
