package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// ErrorStoreUnavailable is fatal: the batch must not start without a store handle.
var ErrorStoreUnavailable = errors.New("store unavailable")

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
