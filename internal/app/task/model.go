package task

import (
	"taskboard/internal/app/board"
	"taskboard/internal/app/user"
)

const (
	DefaultColumn   = "todo"
	MaxColumnLength = 64
)

// Task positions are caller-managed and may repeat within a column.
type Task struct {
	ID       uint64        `json:"id" gorm:"primaryKey"`
	Content  string        `json:"content" gorm:"not null"`
	Column   string        `json:"column" gorm:"size:64;not null"`
	Position int           `json:"position" gorm:"not null;index:idx_tasks_owner_board_position,priority:3"`
	OwnerID  uint64        `json:"-" gorm:"not null;index:idx_tasks_owner_board_position,priority:1"`
	BoardID  uint64        `json:"board_id" gorm:"not null;index:idx_tasks_owner_board_position,priority:2"`
	Owner    *user.Account `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Board    *board.Board  `json:"-" gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

// TaskRequest is the body of both POST /tasks and PUT /tasks/{id}.
type TaskRequest struct {
	Content  *string `json:"content" binding:"required"`
	Column   *string `json:"column" binding:"omitempty,max=64"`
	Position *int    `json:"position"`
	BoardID  uint64  `json:"board_id" binding:"required,max=9223372036854775807"`
}

// Input is a validated TaskRequest with defaults applied.
type Input struct {
	Content  string
	Column   string
	Position int
	BoardID  uint64
}

func (r TaskRequest) Input() Input {
	in := Input{Content: *r.Content, BoardID: r.BoardID}
	if r.Column != nil {
		in.Column = *r.Column
	}
	if r.Position != nil {
		in.Position = *r.Position
	}
	return in
}

type ListQuery struct {
	BoardID uint64 `form:"board_id" binding:"required,max=9223372036854775807"`
}

type DeleteTaskResponse struct {
	Detail string `json:"detail"`
}
