package board

import "taskboard/internal/app/user"

type Board struct {
	ID      uint64        `json:"id" gorm:"primaryKey"`
	Title   string        `json:"title" gorm:"not null"`
	OwnerID uint64        `json:"-" gorm:"not null;index"`
	Owner   *user.Account `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

type CreateBoardRequest struct {
	Title *string `json:"title" binding:"required"`
}

type DeleteBoardResponse struct {
	Detail string `json:"detail"`
}
