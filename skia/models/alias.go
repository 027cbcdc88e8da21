package models

import (
	"github.com/textkit/richlayout/skia/base"
	"github.com/textkit/richlayout/skia/enums"
)

type Scalar = base.Scalar
type Corner = enums.Corner
type RRectType = enums.RRectType
