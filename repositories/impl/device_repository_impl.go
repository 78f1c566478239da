package impl

import (
	"KidSafe/models"
	"KidSafe/repositories"

	"gorm.io/gorm"
)

type DeviceRepositoryImpl struct {
	DB *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repositories.DeviceRepository {
	return &DeviceRepositoryImpl{DB: db}
}

func (r *DeviceRepositoryImpl) FindByID(id string) (models.Device, error) {
	var device models.Device
	if err := r.DB.Where("id = ?", id).First(&device).Error; err != nil {
		return models.Device{}, err
	}
	return device, nil
}

func (r *DeviceRepositoryImpl) FindByDeviceID(deviceID string) (models.Device, error) {
	var device models.Device
	if err := r.DB.Where("device_id = ?", deviceID).First(&device).Error; err != nil {
		return models.Device{}, err
	}
	return device, nil
}

func (r *DeviceRepositoryImpl) FindByChildID(childID string) ([]models.Device, error) {
	var devices []models.Device
	if err := r.DB.Where("child_id = ?", childID).Order("created_at asc").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *DeviceRepositoryImpl) CountByDeviceID(deviceID string, count *int64) error {
	return r.DB.Model(&models.Device{}).Where("device_id = ?", deviceID).Count(count).Error
}

func (r *DeviceRepositoryImpl) Save(device models.Device) error {
	return r.DB.Save(&device).Error
}

func (r *DeviceRepositoryImpl) Delete(device models.Device) error {
	return r.DB.Delete(&device).Error
}
