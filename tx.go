//go:build tinygo

package irbot

import (
	. "machine"
	"time"

	"github.com/sparques/pwm"
)

// TxDevice drives an IR LED with a 38kHz carrier. A board running TxDevice
// stands in for the handheld remote; see cmd/irremote.
type TxDevice struct {
	pgroup pwm.Group
	ch     uint8
	// carrier is the counter value for a 50% duty carrier
	carrier uint32
}

func NewTxDevice(pin Pin) (*TxDevice, error) {
	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	if pgroup == nil {
		return nil, ErrNoPWM
	}
	if err := pgroup.Configure(PWMConfig{Period: uint64(1e9) / uint64(Freq38Khz)}); err != nil {
		return nil, err
	}
	ch, err := pgroup.Channel(pin)
	if err != nil {
		return nil, err
	}
	tx := &TxDevice{
		pgroup:  pgroup,
		ch:      ch,
		carrier: pgroup.Top() / 2,
	}
	tx.dark()
	return tx, nil
}

func (tx *TxDevice) dark() {
	tx.pgroup.Set(tx.ch, 0)
}

// SendFrame plays fm's pulse train: the carrier is on for the first half of
// every pair and off for the second.
func (tx *TxDevice) SendFrame(fm FrameMarshaller) {
	for _, p := range fm.MarshalFrame() {
		tx.pgroup.Set(tx.ch, tx.carrier)
		time.Sleep(p[0])
		tx.dark()
		time.Sleep(p[1])
	}
	tx.dark()
}
