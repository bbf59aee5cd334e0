package v1

import "github.com/shenikar/disaster_response_system/internal/models"

func dtoToCoordinates(dto *CoordinatesDTO) *models.Coordinates {
	if dto == nil {
		return nil
	}
	return &models.Coordinates{Lat: dto.Lat, Lng: dto.Lng}
}

func coordinatesToDTO(coords *models.Coordinates) *CoordinatesDTO {
	if coords == nil {
		return nil
	}
	return &CoordinatesDTO{Lat: coords.Lat, Lng: coords.Lng}
}

// DTOToDisasterModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToDisasterModel(dto any) *models.Incident {
	switch v := dto.(type) {
	case CreateDisasterRequest:
		return &models.Incident{
			Title:        v.Title,
			LocationName: v.LocationName,
			Coordinates:  dtoToCoordinates(v.Coordinates),
			Description:  v.Description,
			Tags:         v.Tags,
			OwnerID:      v.OwnerID,
		}
	case UpdateDisasterRequest:
		return &models.Incident{
			Title:        v.Title,
			LocationName: v.LocationName,
			Coordinates:  dtoToCoordinates(v.Coordinates),
			Description:  v.Description,
			Tags:         v.Tags,
		}
	}
	return nil
}

// ModelToDisasterResponse преобразует доменную модель в DTO для ответа
func ModelToDisasterResponse(model *models.Incident) *DisasterResponse {
	return &DisasterResponse{
		ID:           model.ID,
		Title:        model.Title,
		LocationName: model.LocationName,
		Coordinates:  coordinatesToDTO(model.Coordinates),
		Description:  model.Description,
		Tags:         model.Tags,
		OwnerID:      model.OwnerID,
		AuditTrail:   model.AuditTrail,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

// ModelsToDisasterResponses преобразует слайс моделей в слайс DTO
func ModelsToDisasterResponses(models []*models.Incident) []*DisasterResponse {
	responses := make([]*DisasterResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToDisasterResponse(model)
	}
	return responses
}

// ModelToReportResponse преобразует модель отчета в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:                 model.ID,
		DisasterID:         model.DisasterID,
		UserID:             model.UserID,
		Content:            model.Content,
		ImageURL:           model.ImageURL,
		VerificationStatus: model.VerificationStatus,
		CreatedAt:          model.CreatedAt,
	}
}

// ModelsToReportResponses преобразует слайс отчетов в слайс DTO
func ModelsToReportResponses(models []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// ModelsToResourceResponses преобразует слайс ресурсов в слайс DTO
func ModelsToResourceResponses(models []*models.Resource) []*ResourceResponse {
	responses := make([]*ResourceResponse, len(models))
	for i, model := range models {
		responses[i] = &ResourceResponse{
			ID:             model.ID,
			DisasterID:     model.DisasterID,
			Name:           model.Name,
			LocationName:   model.LocationName,
			Type:           model.Type,
			Coordinates:    coordinatesToDTO(model.Coordinates),
			DistanceMeters: model.DistanceMeters,
			CreatedAt:      model.CreatedAt,
		}
	}
	return responses
}
