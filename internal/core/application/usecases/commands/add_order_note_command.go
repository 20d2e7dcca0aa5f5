package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrAddOrderNoteCommandIsNotConstructed = errors.New(
	"AddOrderNoteCommand must be created via NewAddOrderNoteCommand constructor",
)

// AddOrderNoteCommand represents a request to append a free-form note to an
// order. Notes have no state-machine implications.
type AddOrderNoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	text    string
	actor   string

	guard guard.ConstructorGuard
}

// NewAddOrderNoteCommand creates a command to append a note to an order.
func NewAddOrderNoteCommand(orderID kernel.UUID, text, actor string) (AddOrderNoteCommand, error) {
	cmd := AddOrderNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setText(text),
		cmd.setActor(actor),
	); err != nil {
		return AddOrderNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderNoteCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AddOrderNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Text returns the note text.
func (c AddOrderNoteCommand) Text() string {
	return c.text
}

// Actor returns who wrote the note.
func (c AddOrderNoteCommand) Actor() string {
	return c.actor
}

func (c *AddOrderNoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderNoteCommand) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}

	c.text = text
	return nil
}

func (c *AddOrderNoteCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}
