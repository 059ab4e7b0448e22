package health

import "errors"

var errStorageDisabled = errors.New("object storage is not configured")
