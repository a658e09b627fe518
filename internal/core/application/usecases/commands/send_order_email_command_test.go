package commands_test

import (
	"testing"

	"ordermail/internal/core/application/usecases/commands"
	"ordermail/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSendOrderEmailCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewSendOrderEmailCommand(orderID, commands.TemplateOrderConfirmation, "")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, commands.TemplateOrderConfirmation, cmd.Template())
	assert.Empty(t, cmd.OverrideEmail())
}

func TestNewSendOrderEmailCommand_WithOverrideEmail(t *testing.T) {
	cmd, err := commands.NewSendOrderEmailCommand(
		kernel.NewUUID(), commands.TemplateShipmentConfirmation, "ops@example.com",
	)

	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", cmd.OverrideEmail())
}

func TestNewSendOrderEmailCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewSendOrderEmailCommand(kernel.UUID{}, commands.TemplateOrderConfirmation, "")

	require.Error(t, err)
}

func TestNewSendOrderEmailCommand_UnknownTemplate(t *testing.T) {
	_, err := commands.NewSendOrderEmailCommand(kernel.NewUUID(), "welcomeBack", "")

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUnknownEmailTemplate)
}

func TestSendOrderEmailCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.SendOrderEmailCommand{}

	err := cmd.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrSendOrderEmailCommandIsNotConstructed)
}

func TestEmailTemplate_Validate(t *testing.T) {
	known := []commands.EmailTemplate{
		commands.TemplateOrderConfirmation,
		commands.TemplateBankTransferConfirmation,
		commands.TemplateShipmentConfirmation,
		commands.TemplateOrderCancellation,
		commands.TemplatePartnerPaymentTerms,
	}
	for _, template := range known {
		assert.NoError(t, template.Validate(), string(template))
	}

	err := commands.EmailTemplate("").Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUnknownEmailTemplate)
}
