package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/application/dto"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/entity"
	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain/repository"
)

// ResenaUseCase casos de uso de reseñas de negocios.
type ResenaUseCase struct {
	repo     repository.ResenaRepository
	negocios repository.NegocioRepository
}

// NewResenaUseCase construye el caso de uso.
func NewResenaUseCase(repo repository.ResenaRepository, negocios repository.NegocioRepository) *ResenaUseCase {
	return &ResenaUseCase{repo: repo, negocios: negocios}
}

// Crear registra una reseña pública: puntuación fuera de [1,5] se rechaza sin
// persistir, el negocio debe existir y toda reseña nace sin aprobar.
func (uc *ResenaUseCase) Crear(ctx context.Context, in dto.CrearResenaRequest) (*dto.ResenaResponse, error) {
	if !entity.PuntuacionValida(in.Puntuacion) {
		return nil, domain.ErrInvalidInput
	}
	negocio, err := uc.negocios.ObtenerPorID(ctx, in.NegocioID)
	if err != nil {
		return nil, err
	}
	if negocio == nil {
		return nil, domain.ErrNotFound
	}
	resena := &entity.Resena{
		ID:            uuid.New().String(),
		NegocioID:     in.NegocioID,
		NombreCliente: in.NombreCliente,
		Puntuacion:    in.Puntuacion,
		Comentario:    in.Comentario,
		Aprobada:      false,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Crear(ctx, resena); err != nil {
		return nil, err
	}
	return toResenaResponse(resena), nil
}

// ListarPorNegocio lista las reseñas aprobadas de un negocio (vista pública).
func (uc *ResenaUseCase) ListarPorNegocio(ctx context.Context, negocioID string) (*dto.ResenaListResponse, error) {
	list, err := uc.repo.ListarAprobadasPorNegocio(ctx, negocioID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResenaResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toResenaResponse(r))
	}
	return &dto.ResenaListResponse{Items: items}, nil
}

// ListarTodas lista todas las reseñas, aprobadas o no (panel de admin).
func (uc *ResenaUseCase) ListarTodas(ctx context.Context, limit, offset int) (*dto.ResenaListResponse, error) {
	list, err := uc.repo.ListarTodas(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResenaResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toResenaResponse(r))
	}
	return &dto.ResenaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Actualizar cambia el estado de aprobación (toggle del panel).
func (uc *ResenaUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarResenaRequest) (*dto.ResenaResponse, error) {
	resena, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resena == nil {
		return nil, nil
	}
	if in.Aprobada != nil {
		resena.Aprobada = *in.Aprobada
	}
	if err := uc.repo.Actualizar(ctx, resena); err != nil {
		return nil, err
	}
	return toResenaResponse(resena), nil
}

// Eliminar borra definitivamente una reseña.
func (uc *ResenaUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Eliminar(ctx, id)
}

func toResenaResponse(r *entity.Resena) *dto.ResenaResponse {
	if r == nil {
		return nil
	}
	return &dto.ResenaResponse{
		ID:            r.ID,
		NegocioID:     r.NegocioID,
		NombreCliente: r.NombreCliente,
		Puntuacion:    r.Puntuacion,
		Comentario:    r.Comentario,
		Aprobada:      r.Aprobada,
		CreatedAt:     r.CreatedAt,
	}
}
