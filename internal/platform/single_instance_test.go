package platform

import (
	"errors"
	"testing"
	"time"
)

func TestSingleInstanceActivatesRunningInstance(t *testing.T) {
	appName := "pomobar-test-" + t.Name()
	guard, err := AcquireSingleInstance(appName)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	defer guard.Release()

	activated := make(chan struct{}, 1)
	guard.Serve(func() {
		activated <- struct{}{}
	})

	second, err := AcquireSingleInstance(appName)
	if !errors.Is(err, ErrAlreadyRunning) || second != nil {
		t.Fatalf("expected ErrAlreadyRunning, got guard=%v err=%v", second, err)
	}

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatalf("running instance was not activated")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	guard, err := AcquireSingleInstance("pomobar-test-" + t.Name())
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
	var nilGuard *InstanceGuard
	if nilGuard.Release() != nil || nilGuard.Address() != "" {
		t.Fatalf("nil guard must be inert")
	}
}

func TestPortFromNameInRange(t *testing.T) {
	for _, name := range []string{"", "pomobar", "another app"} {
		port := portFromName(name)
		if port < 20000 || port > 39999 {
			t.Fatalf("%q: port %d out of range", name, port)
		}
		if port != portFromName(name) {
			t.Fatalf("%q: port not deterministic", name)
		}
	}
}
