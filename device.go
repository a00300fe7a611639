package recdl

import (
	"fmt"

	"github.com/google/uuid"
)

// DuplexMode is the half/full duplex configuration of a sub-device.
type DuplexMode string

const (
	DuplexUnknown DuplexMode = ""
	DuplexHalf    DuplexMode = "half"
	DuplexFull    DuplexMode = "full"
	DuplexSimplex DuplexMode = "simplex"
)

// DeviceDescriptor identifies the attached capture device.
type DeviceDescriptor struct {
	ID                          uuid.UUID  `json:"id"`
	ModelName                   string     `json:"modelName"`
	DisplayName                 string     `json:"displayName"`
	PersistentID                int64      `json:"persistentID"`
	TopologicalID               int64      `json:"topologicalID"`
	DuplexMode                  DuplexMode `json:"duplexMode"`
	SubDeviceIndex              int        `json:"subDeviceIndex"`
	NumberOfSubDevices          int        `json:"numberOfSubDevices"`
	SupportCapture              bool       `json:"supportCapture"`
	SupportPlayback             bool       `json:"supportPlayback"`
	SupportInputFormatDetection bool       `json:"supportInputFormatDetection"`
}

// NewDeviceDescriptor returns a descriptor with a fresh identity.
func NewDeviceDescriptor(modelName, displayName string) DeviceDescriptor {
	return DeviceDescriptor{
		ID:                 uuid.New(),
		ModelName:          modelName,
		DisplayName:        displayName,
		NumberOfSubDevices: 1,
		SupportCapture:     true,
	}
}

func (dd DeviceDescriptor) String() string {
	name := dd.DisplayName
	if name == "" {
		name = dd.ModelName
	}
	s := fmt.Sprintf("%s [%s] persistentID=%#x topologicalID=%#x", name, dd.ModelName, dd.PersistentID, dd.TopologicalID)
	if dd.NumberOfSubDevices > 1 {
		s += fmt.Sprintf(" sub-device %d/%d", dd.SubDeviceIndex+1, dd.NumberOfSubDevices)
	}
	if dd.DuplexMode != DuplexUnknown {
		s += " duplex=" + string(dd.DuplexMode)
	}
	return s
}
