package mino

// KickGroup selects the wall kick table a piece type rotates with.
type KickGroup int

const (
	KickGroupNone KickGroup = iota
	KickGroupJLSTZ
	KickGroupI
)

func (g KickGroup) String() string {
	switch g {
	case KickGroupJLSTZ:
		return "JLSTZ"
	case KickGroupI:
		return "I"
	default:
		return "none"
	}
}

type kickKey struct {
	group    KickGroup
	from, to Rotation
}

// Super Rotation System tests, tried in order after a plain rotation fails.
// Offsets are applied to the anchor as is, with Y growing downward.
var kickTable = map[kickKey][]Point{
	{KickGroupJLSTZ, Rotation0, RotationR}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{KickGroupJLSTZ, RotationR, Rotation0}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{KickGroupJLSTZ, RotationR, Rotation2}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{KickGroupJLSTZ, Rotation2, RotationR}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{KickGroupJLSTZ, Rotation2, RotationL}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{KickGroupJLSTZ, RotationL, Rotation2}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{KickGroupJLSTZ, RotationL, Rotation0}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{KickGroupJLSTZ, Rotation0, RotationL}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},

	{KickGroupI, Rotation0, RotationR}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{KickGroupI, RotationR, Rotation0}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{KickGroupI, RotationR, Rotation2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{KickGroupI, Rotation2, RotationR}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{KickGroupI, Rotation2, RotationL}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{KickGroupI, RotationL, Rotation2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{KickGroupI, RotationL, Rotation0}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{KickGroupI, Rotation0, RotationL}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

// Kicks returns the ordered kick offsets for rotating a piece of the given
// group from one rotation state to another.
func Kicks(group KickGroup, from, to Rotation) ([]Point, bool) {
	k, ok := kickTable[kickKey{group, from, to}]
	return k, ok
}
