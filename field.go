package recdl

// FieldDominance is the device-native field order of a display mode.
type FieldDominance uint32

// Field dominance values reported by the device.
var (
	FieldUnknown              = FieldDominance(0)
	LowerFieldFirst           = FieldDominance(MakeFourCC("lowr"))
	UpperFieldFirst           = FieldDominance(MakeFourCC("uppr"))
	ProgressiveFrame          = FieldDominance(MakeFourCC("prog"))
	ProgressiveSegmentedFrame = FieldDominance(MakeFourCC("psf "))
)

func (fd FieldDominance) String() string {
	switch fd {
	case LowerFieldFirst:
		return "LowerFieldFirst"
	case UpperFieldFirst:
		return "UpperFieldFirst"
	case ProgressiveFrame:
		return "ProgressiveFrame"
	case ProgressiveSegmentedFrame:
		return "ProgressiveSegmentedFrame"
	}
	return "UnknownFieldDominance"
}

// FieldDetail is the user-selected field handling for recording.
type FieldDetail int

// Field detail choices, in persisted order.
const (
	SingleField FieldDetail = iota
	BottomFieldFirst
	TopFieldFirst
)

func (fd FieldDetail) String() string {
	switch fd {
	case SingleField:
		return "SingleField"
	case BottomFieldFirst:
		return "BottomFieldFirst"
	case TopFieldFirst:
		return "TopFieldFirst"
	}
	return "UnknownFieldDetail"
}

// Valid reports whether fd is one of the three known choices.
func (fd FieldDetail) Valid() bool {
	return fd >= SingleField && fd <= TopFieldFirst
}

// Dominance maps the choice to the device field dominance it implies.
func (fd FieldDetail) Dominance() FieldDominance {
	switch fd {
	case SingleField:
		return ProgressiveFrame
	case BottomFieldFirst:
		return LowerFieldFirst
	case TopFieldFirst:
		return UpperFieldFirst
	}
	return FieldUnknown
}

// Interlaced reports whether the choice records two fields per frame.
func (fd FieldDetail) Interlaced() bool {
	return fd == BottomFieldFirst || fd == TopFieldFirst
}

// Order returns the encoder field order attachment for the choice.
func (fd FieldDetail) Order() FieldOrder {
	switch fd {
	case BottomFieldFirst:
		return SpatialFirstLineLate
	case TopFieldFirst:
		return SpatialFirstLineEarly
	default:
		return FieldOrderNone
	}
}

// FieldDetailFor is the inverse of FieldDetail.Dominance. Progressive segmented and
// unknown dominance have no matching choice.
func FieldDetailFor(dominance FieldDominance) (FieldDetail, bool) {
	switch dominance {
	case ProgressiveFrame:
		return SingleField, true
	case LowerFieldFirst:
		return BottomFieldFirst, true
	case UpperFieldFirst:
		return TopFieldFirst, true
	}
	return SingleField, false
}

// FieldOrder is the spatial field order attached to encoded interlaced frames.
type FieldOrder string

const (
	FieldOrderNone        FieldOrder = ""
	SpatialFirstLineLate  FieldOrder = "SpatialFirstLineLate"
	SpatialFirstLineEarly FieldOrder = "SpatialFirstLineEarly"
)
