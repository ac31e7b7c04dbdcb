package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is shared so struct metadata is cached across loads.
var validatorInstance = validator.New()

// Validate checks required fields, id uniqueness within each list and that
// every AI Hub description carries something to render.
func (c *Content) Validate() error {
	if err := validatorInstance.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	for _, item := range c.AIHub {
		if item.Description.IsZero() {
			return fmt.Errorf("%w: ai hub item %d: %w", ErrInvalidContent, item.ID, ErrEmptyDescription)
		}
	}
	return nil
}
