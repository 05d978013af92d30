package meshgeom

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger returned nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	z := Pt2(0.0, 0)
	if _, _, ok := InvertQuadMapping(0, 0, Pt2(1.0, 1), z, z, z, z, 1e-10, 5); ok {
		t.Fatal("expected failure")
	}
	if !strings.Contains(buf.String(), "singular quad jacobian") {
		t.Errorf("missing debug record, got %q", buf.String())
	}

	buf.Reset()
	trapezoid.Invert(trapezoid.Eval(0.6, 0.8), -0.9, -0.9, 1e-14, 1)
	if !strings.Contains(buf.String(), "did not converge") {
		t.Errorf("missing debug record, got %q", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	InvertQuadMapping(0, 0, Pt2(1.0, 1), z, z, z, z, 1e-10, 5)
	if buf.Len() != 0 {
		t.Errorf("expected no output after reset, got %q", buf.String())
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(nil)
			}
			p := trapezoid.Eval(0.1*float64(i)-0.4, 0.3)
			for range 100 {
				if _, _, ok := trapezoid.Invert(p, 0, 0, DefaultTolerance, DefaultMaxIterations); !ok {
					errs <- p.String()
					return
				}
				_ = HexahedronVolume[float64](unitCube(float64(i + 1)))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for p := range errs {
		t.Errorf("no convergence for %s", p)
	}
}
