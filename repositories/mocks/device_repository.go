package mocks

import (
	"KidSafe/models"

	"github.com/stretchr/testify/mock"
)

type DeviceRepository struct {
	mock.Mock
}

func (m *DeviceRepository) FindByID(id string) (models.Device, error) {
	args := m.Called(id)
	return args.Get(0).(models.Device), args.Error(1)
}

func (m *DeviceRepository) FindByDeviceID(deviceID string) (models.Device, error) {
	args := m.Called(deviceID)
	return args.Get(0).(models.Device), args.Error(1)
}

func (m *DeviceRepository) FindByChildID(childID string) ([]models.Device, error) {
	args := m.Called(childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Device), args.Error(1)
}

func (m *DeviceRepository) CountByDeviceID(deviceID string, count *int64) error {
	args := m.Called(deviceID, count)
	return args.Error(0)
}

func (m *DeviceRepository) Save(device models.Device) error {
	args := m.Called(device)
	return args.Error(0)
}

func (m *DeviceRepository) Delete(device models.Device) error {
	args := m.Called(device)
	return args.Error(0)
}
