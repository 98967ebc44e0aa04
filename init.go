package ssd1306

// InitInternalSupply initializes a panel whose Vcc is generated by the
// internal charge pump, then clears the screen.
//
// The display is switched on before it is configured and stays on.
func (d *Dev) InitInternalSupply() error {
	d.log.Debugf("Initializing (internal Vcc)...")

	if err := d.PowerOn(); err != nil {
		return err
	}
	if err := d.SelectChannel(ChannelA); err != nil {
		return err
	}
	return d.run(
		d.Reset,
		d.ChargePumpOn,
		d.ActivateDisplay,
		func() error { return d.SetDisplayClock(0x0, 0x8) },
		func() error { return d.SetMultiplexRatio(0x1F) }, // 1/32 duty
		func() error { return d.SetDisplayOffset(0x00) },
		func() error { return d.SetStartLine(0x00) },
		func() error { return d.SetAddressingMode(PageAddressing) },
		func() error { return d.SetSegmentRemap(true) },
		func() error { return d.SetCommonRemap(true) },
		// Sequential COM pins, required for the rows to map correctly.
		func() error { return d.SetComPinConfig(false, false) },
		func() error { return d.SetContrast(0xFF) },
		func() error { return d.SetPrechargePeriod(0x1, 0xF) },
		func() error { return d.Fill(0x00) },
	)
}

// InitExternalSupply initializes a panel whose Vcc is supplied externally,
// clears the screen and switches the display on.
func (d *Dev) InitExternalSupply() error {
	d.log.Debugf("Initializing (external Vcc)...")

	return d.run(
		d.Reset,
		d.DeactivateDisplay,
		func() error { return d.SetDisplayClock(0x0, 0x8) },
		func() error { return d.SetMultiplexRatio(0x1F) }, // 1/32 duty
		func() error { return d.SetDisplayOffset(0x00) },
		func() error { return d.SetStartLine(0x00) },
		d.ChargePumpOff,
		func() error { return d.SetAddressingMode(PageAddressing) },
		func() error { return d.SetSegmentRemap(true) },
		func() error { return d.SetCommonRemap(true) },
		func() error { return d.SetComPinConfig(false, false) },
		func() error { return d.SetContrast(0xFF) },
		func() error { return d.SetPrechargePeriod(0x2, 0x2) },
		func() error { return d.SetVCOMH(VCOMH089) },
		d.EveryPixelOff,
		func() error { return d.SetInverseDisplay(false) },
		func() error { return d.Fill(0x00) },
		d.ActivateDisplay,
	)
}

// run executes steps in order and stops at the first error.
func (d *Dev) run(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
