package blog

import "errors"

var ErrUnreadable = errors.New("stored blog content cannot be decrypted")
