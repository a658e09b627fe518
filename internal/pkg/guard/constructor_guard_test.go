package guard_test

import (
	"errors"
	"testing"

	"ordermail/internal/pkg/errs"
	"ordermail/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NoError(t, g.Validate(errors.New("command is not constructed")))
		assert.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		notConstructed := errors.New("command is not constructed")

		require.ErrorIs(t, g.Validate(notConstructed), notConstructed)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// statusReport mirrors how commands embed the guard: the zero value is
// rejected by Validate, the constructed value passes.
type statusReport struct {
	guard guard.ConstructorGuard
	order string
}

var errStatusReportNotConstructed = errs.NewValueIsInvalidError("statusReport")

func newStatusReport(orderID string) (statusReport, error) {
	if orderID == "" {
		return statusReport{}, errs.NewValueIsRequiredError("orderId")
	}
	return statusReport{guard: guard.NewConstructorGuard(), order: orderID}, nil
}

func (r statusReport) Validate() error {
	return r.guard.Validate(errStatusReportNotConstructed)
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	t.Run("constructed command validates", func(t *testing.T) {
		report, err := newStatusReport("order-42")
		require.NoError(t, err)

		assert.NoError(t, report.Validate())
	})

	t.Run("zero value command is rejected", func(t *testing.T) {
		var report statusReport

		err := report.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "value is invalid: statusReport", err.Error())
	})

	t.Run("guard state survives copies", func(t *testing.T) {
		report, err := newStatusReport("order-42")
		require.NoError(t, err)

		copied := report
		assert.NoError(t, copied.Validate())
	})
}
