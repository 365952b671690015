package robot

import "fmt"

type call struct {
	Name string
	Duty uint16
}

type recorder struct {
	calls []call
}

func (r *recorder) Stop()                { r.calls = append(r.calls, call{"stop", 0}) }
func (r *recorder) Forward(duty uint16)  { r.calls = append(r.calls, call{"forward", duty}) }
func (r *recorder) Backward(duty uint16) { r.calls = append(r.calls, call{"backward", duty}) }
func (r *recorder) Left(duty uint16)     { r.calls = append(r.calls, call{"left", duty}) }
func (r *recorder) Right(duty uint16)    { r.calls = append(r.calls, call{"right", duty}) }

type lines []string

func (l *lines) Printf(format string, v ...interface{}) {
	*l = append(*l, fmt.Sprintf(format, v...))
}

// keys hands out a script of keys, then NoKey forever.
type keys []int

func (k *keys) ReadKey() int {
	if len(*k) == 0 {
		return -1
	}
	key := (*k)[0]
	*k = (*k)[1:]
	return key
}
