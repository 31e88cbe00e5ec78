// Package system controls the Linux console and input devices used while a
// frame is shown on the framebuffer.
package system

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Console drives the Linux virtual terminal so a framebuffer frame is not
// overdrawn by the text cursor. Every call logs its outcome when Logger is set.
type Console struct {
	Logger logger
}

// SetGraphicsMode switches the console to KD_GRAPHICS.
func (c Console) SetGraphicsMode() error {
	return c.logged(setKDMode(kdGraphics), "KD_GRAPHICS set", "KD_GRAPHICS failed")
}

// RestoreTextMode switches the console back to KD_TEXT.
func (c Console) RestoreTextMode() error {
	return c.logged(setKDMode(kdText), "KD_TEXT set", "KD_TEXT failed")
}

func (c Console) HideCursor() error {
	return c.logged(writeVT("\x1b[?25l"), "cursor hidden", "hide cursor failed")
}

func (c Console) ShowCursor() error {
	return c.logged(writeVT("\x1b[?25h"), "cursor shown", "show cursor failed")
}

func (c Console) logged(err error, ok, failed string) error {
	if c.Logger == nil {
		return err
	}
	if err != nil {
		c.Logger.Errorf("tty", "%s: %v", failed, err)
	} else {
		c.Logger.Infof("tty", "%s", ok)
	}
	return err
}
