package services

import (
	"errors"

	"github.com/google/uuid"

	"KidSafe/models"
	"KidSafe/repositories"
)

var (
	ErrDeviceIDTaken     = errors.New("device already registered")
	ErrUnknownDeviceType = errors.New("device type must be phone, tablet or computer")
)

type DeviceService struct {
	DeviceRepo repositories.DeviceRepository
	ChildRepo  repositories.ChildRepository
}

func NewDeviceService(deviceRepo repositories.DeviceRepository, childRepo repositories.ChildRepository) *DeviceService {
	return &DeviceService{DeviceRepo: deviceRepo, ChildRepo: childRepo}
}

// RegisterDevice creates a device for one of the parent's children. The
// opaque device_id is the child-login lookup key and must be unique across
// all devices.
func (s *DeviceService) RegisterDevice(parentID, childID, deviceID, deviceName, deviceType, osType string) (models.Device, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Device{}, ErrChildNotFound
	}
	if child.ParentID != parentID {
		return models.Device{}, ErrNotOwned
	}

	switch deviceType {
	case models.DeviceTypePhone, models.DeviceTypeTablet, models.DeviceTypeComputer:
	default:
		return models.Device{}, ErrUnknownDeviceType
	}
	if deviceID == "" || deviceName == "" {
		return models.Device{}, errors.New("device_id and device_name are required")
	}

	var count int64
	if err := s.DeviceRepo.CountByDeviceID(deviceID, &count); err != nil {
		return models.Device{}, err
	}
	if count > 0 {
		return models.Device{}, ErrDeviceIDTaken
	}

	device := models.Device{
		ID:         uuid.NewString(),
		ChildID:    childID,
		DeviceID:   deviceID,
		DeviceName: deviceName,
		DeviceType: deviceType,
		OSType:     osType,
	}
	if err := s.DeviceRepo.Save(device); err != nil {
		return models.Device{}, err
	}
	return device, nil
}

func (s *DeviceService) ListDevices(parentID, childID string) ([]models.Device, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return nil, ErrChildNotFound
	}
	if child.ParentID != parentID {
		return nil, ErrNotOwned
	}
	return s.DeviceRepo.FindByChildID(childID)
}

func (s *DeviceService) UpdateDevice(parentID, id, deviceName string, isActive *bool) (models.Device, error) {
	device, err := s.ownedDevice(parentID, id)
	if err != nil {
		return models.Device{}, err
	}

	if deviceName != "" {
		device.DeviceName = deviceName
	}
	if isActive != nil {
		device.IsActive = *isActive
	}
	if err := s.DeviceRepo.Save(device); err != nil {
		return models.Device{}, err
	}
	return device, nil
}

func (s *DeviceService) DeleteDevice(parentID, id string) error {
	device, err := s.ownedDevice(parentID, id)
	if err != nil {
		return err
	}
	return s.DeviceRepo.Delete(device)
}

func (s *DeviceService) ownedDevice(parentID, id string) (models.Device, error) {
	device, err := s.DeviceRepo.FindByID(id)
	if err != nil {
		return models.Device{}, ErrDeviceNotFound
	}
	child, err := s.ChildRepo.FindByID(device.ChildID)
	if err != nil || child.ParentID != parentID {
		return models.Device{}, ErrDeviceNotFound
	}
	return device, nil
}
