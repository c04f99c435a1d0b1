//go:build !linux

package main

func setRawIO() (restore func(), err error) {
	err = ErrRawUnsupported
	return
}
