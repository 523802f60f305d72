package adjoin

import (
	"testing"

	"go.uber.org/goleak"
)

// Composition is callback driven; no test may leave a goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
