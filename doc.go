// Package ssd1306 controls a SSD1306 OLED display via I²C.
//
// The SSD1306 is a monochrome OLED controller with 128×64 bits of display RAM,
// organized as 8 pages of 128 columns. Each RAM byte is a vertical strip of 8
// pixels, least significant bit on top. This driver targets 128×32 panels
// (1/32 duty) but every register can be programmed for other geometries.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock
//	SDA         → I²C Data
//	RES         → Optional: GPIO for hardware reset
//	SA0         → GND for address 0x3C, VCC for 0x3D
//
// Panels powered from an external Vcc may also have their supply switched by
// a GPIO driving a P-channel transistor; pass it as Opts.VDDB.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/font5x7"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := ssd1306.NewI2C(bus, gpioreg.ByName("GPIO24"), nil)
//		dev.InitInternalSupply()
//		dev.ShowString(font5x7.Basic, "Hello", 0, 0)
//	}
//
// # Drawing
//
// All drawing goes through page addressing: for every page, the driver sets
// the page and the start column, then writes the bytes of that page. Region
// writes fail with ErrAddressingMode if another addressing mode was selected
// with SetAddressingMode.
//
//	dev.Fill(0x00)                           // Clear a 128x32 panel
//	dev.Checkerboard()                       // Test pattern on all 8 pages
//	dev.DrawFrame()                          // Border around a 128x32 panel
//	dev.ShowPattern(region, pixels)          // Raw bytes
//	dev.ShowImage(0, 0, img)                 // Any image.Image, 1 bit per pixel
//	dev.ShowString(font5x7.Basic, "Hi", 1, 0) // Text
//
// # Fonts
//
// Glyphs are 5×7 pixels and take 6 columns with their spacer. font5x7.Basic
// covers ASCII and Latin-1, font5x7.Extended covers Greek and Katakana. A
// string always starts with a blank glyph at the requested column.
//
// # Hardware Scrolling
//
//	dev.StartHorizontalScroll(ssd1306.HorizontalScroll{
//		Direction: ssd1306.ScrollLeft,
//		EndPage:   3,
//		Interval:  ssd1306.Interval5Frames,
//	})
//	time.Sleep(5 * time.Second)
//	dev.StopScroll()
//
// StartContinuousScroll adds a vertical offset to the horizontal scroll.
// VerticalScroll and the fades are driven step by step from the host and
// block until done or until their context is cancelled.
//
// # Errors
//
// Transport failures are returned as *BusError. With Opts.BestEffort they are
// only logged, and drawing carries on.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
