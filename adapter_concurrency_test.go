package adapters

import (
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdapter_ConcurrentAdaptAndRegister(t *testing.T) {
	t.Parallel()
	a := New()
	a.RegisterConverter("Username", MapString(strings.ToUpper))

	readers := runtime.GOMAXPROCS(0) * 2
	var wg sync.WaitGroup
	errs := make(chan string, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				d := &userDomain{}
				if err := a.Adapt(&userEntity{Username: "sampleuser", Email: "a@b"}, d); err != nil {
					errs <- err.Error()
					return
				}
				if d.Username != "SAMPLEUSER" && d.Username != "sampleuser" {
					errs <- "unexpected username " + d.Username
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			if j%2 == 0 {
				a.RegisterConverter("Username", nil)
			} else {
				a.RegisterConverter("Username", MapString(strings.ToUpper))
			}
			a.RegisterValidatorFor(userDomain{}, "Email", func(any) error { return nil })
		}
	}()

	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestAdapter_ConcurrentRegistrationsAreNotLost(t *testing.T) {
	a := New()
	fields := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	var wg sync.WaitGroup
	for _, f := range fields {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			a.RegisterConverter(name, MapString(strings.ToUpper))
		}(f)
	}
	wg.Wait()

	reg := a.converters.Load()
	for _, f := range fields {
		_, ok := reg.global[f]
		assert.True(t, ok, "converter %s missing", f)
	}
}
