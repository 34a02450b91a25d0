package internal

import (
	"bitwise74/storage-api/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB     *gorm.DB
	Argon  *security.ArgonHash
	Cipher *security.IDCipher
}
