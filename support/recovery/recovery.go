package recovery

type fn func()

// RunWith runs function f() and in case of panic
// it executes first function r() and restarts itself
func RunWith(f, r fn) {
	defer func() {
		if e := recover(); e != nil {
			if r != nil {
				r()
			}
			go RunWith(f, r)
		}
	}()
	f()
}

// CleanPanic runs function f() and in case of panic
// it executes function r() without restarting
func CleanPanic(f, r fn) {
	defer func() {
		if e := recover(); e != nil {
			if r != nil {
				r()
			}
		}
	}()
	f()
}
