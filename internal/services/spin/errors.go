package spin

// SpinError is a custom error type for spin service errors
type SpinError string

// Error implements the error interface
func (e SpinError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrWheelNotFound      SpinError = "wheel not found"
	ErrWheelAlreadyExists SpinError = "wheel already exists for this channel"
	ErrOptionNotFound     SpinError = "option not found on wheel"
	ErrTooFewOptions      SpinError = "a wheel must keep at least two options"
	ErrTooManyOptions     SpinError = "wheel is at maximum option capacity"
	ErrSpinInProgress     SpinError = "a spin is already in progress"
	ErrNilConfig          SpinError = "config cannot be nil"
	ErrNilWheelRepo       SpinError = "wheel repository cannot be nil"
	ErrNilSpinLogRepo     SpinError = "spin log repository cannot be nil"
	ErrNilRandomSource    SpinError = "random source cannot be nil"
	ErrNilClock           SpinError = "clock cannot be nil"
	ErrNilUUIDGenerator   SpinError = "UUID generator cannot be nil"
)
