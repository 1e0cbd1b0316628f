package repositoryImp

import (
	"gorm.io/gorm"

	"greenhouse/entities"
	"greenhouse/pkg/plant/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) List() ([]entities.PlantInfo, error) {
	var out []entities.PlantInfo
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantRepo) Create(p *entities.PlantInfo) error { return r.db.Create(p).Error }

func (r *plantRepo) Comments(plantInfoID uint) ([]repository.CommentRow, error) {
	var out []repository.CommentRow
	err := r.db.Table("plant_info_comments AS c").
		Select("c.id, c.plant_info_id, c.user_id, c.content, c.created_at, u.username").
		Joins("JOIN users u ON c.user_id = u.id").
		Where("c.plant_info_id = ?", plantInfoID).
		Order("c.created_at DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantRepo) AddComment(cm *entities.PlantComment) error { return r.db.Create(cm).Error }
