package service

import (
	"tg_ledger/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault
