package vector

import "log"

//Option vector option
type Option func(v *Vector)

//Options represents vector options
type Options []Option

//Apply applies options
func (o Options) Apply(v *Vector) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(v)
	}
}

//WithLogger sets the logger used to report allocation failures
func WithLogger(logger *log.Logger) Option {
	return func(v *Vector) {
		if logger != nil {
			v.logger = logger
		}
	}
}

//WithAbort sets the function terminating the process after an allocation failure
func WithAbort(abort func(code int)) Option {
	return func(v *Vector) {
		if abort != nil {
			v.abort = abort
		}
	}
}

//WithCapacity reserves initial capacity once all options are applied
func WithCapacity(capacity int) Option {
	return func(v *Vector) {
		v.initialCapacity = capacity
	}
}
