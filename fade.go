package ssd1306

import (
	"context"
	"time"
)

// Fade parameters.
const (
	MaxBrightness = 0x8F                   // Last contrast level of a fade
	FadeStepDelay = 600 * time.Microsecond // Wait after each contrast level
)

// FadeIn switches the display on and ramps the contrast from 0 up to
// MaxBrightness. It blocks until the ramp completes or ctx is done.
func (d *Dev) FadeIn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.ActivateDisplay(); err != nil {
		return err
	}
	for level := 0; level <= MaxBrightness; level++ {
		if err := d.fadeStep(ctx, byte(level)); err != nil {
			return err
		}
	}
	return nil
}

// FadeOut ramps the contrast from MaxBrightness down to 0 and switches the
// display off. It blocks until the ramp completes or ctx is done; a cancelled
// fade leaves the display on.
func (d *Dev) FadeOut(ctx context.Context) error {
	for level := MaxBrightness; level >= 0; level-- {
		if err := d.fadeStep(ctx, byte(level)); err != nil {
			return err
		}
	}
	return d.DeactivateDisplay()
}

func (d *Dev) fadeStep(ctx context.Context, level byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.SetContrast(level); err != nil {
		return err
	}
	d.delay(FadeStepDelay)
	return nil
}
