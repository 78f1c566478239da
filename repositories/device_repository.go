package repositories

import "KidSafe/models"

type DeviceRepository interface {
	FindByID(id string) (models.Device, error)
	FindByDeviceID(deviceID string) (models.Device, error)
	FindByChildID(childID string) ([]models.Device, error)
	CountByDeviceID(deviceID string, count *int64) error
	Save(device models.Device) error
	Delete(device models.Device) error
}
