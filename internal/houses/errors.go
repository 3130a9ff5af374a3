package houses

import "errors"

// ErrUnknownSystem indicates a house system name that ParseSystem does not
// recognize.
var ErrUnknownSystem = errors.New("unknown house system")
