package interfaces

import (
	"github.com/textkit/richlayout/skia/base"
	"github.com/textkit/richlayout/skia/enums"
	"github.com/textkit/richlayout/skia/models"
)

type Scalar = base.Scalar
type MatrixType = enums.MatrixType
type Point = models.Point
type Rect = models.Rect
type RRect = models.RRect
