package injuries

// Region es una zona del modelo 3D que puede resaltarse.
type Region string

const (
	RegionRightForeleg  Region = "rightForeleg"
	RegionLeftForeleg   Region = "leftForeleg"
	RegionRightAnkle    Region = "rightAnkle"
	RegionLeftAnkle     Region = "leftAnkle"
	RegionRightHind     Region = "rightHind"
	RegionLeftHind      Region = "leftHind"
	RegionRightKnee     Region = "rightKnee"
	RegionLeftKnee      Region = "leftKnee"
	RegionRightShoulder Region = "rightShoulder"
	RegionLeftShoulder  Region = "leftShoulder"
	RegionRightHip      Region = "rightHip"
	RegionLeftHip       Region = "leftHip"
	RegionNeck          Region = "neck"
	RegionBack          Region = "back"
)
