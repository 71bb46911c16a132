package dto

type CategoryCreateDTO struct {
	Name string `json:"name"`
}

type CategoryRenameDTO struct {
	NewName string `json:"new_name"`
}

type MessageDTO struct {
	Message string `json:"message"`
}
