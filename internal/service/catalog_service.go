package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/model"
	"github.com/lshigami/Shelfscore/internal/repository"
	"github.com/rs/zerolog/log"
)

type CatalogService interface {
	CreateCategory(ctx context.Context, req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error)
	CreateBook(ctx context.Context, req dto.BookCreateDTO) (*dto.BookResponseDTO, error)
	GetBook(ctx context.Context, id uint) (*dto.BookResponseDTO, error)
}

type catalogService struct {
	bookRepo       repository.BookRepository
	evaluationRepo repository.EvaluationRepository
}

func NewCatalogService(bookRepo repository.BookRepository, evaluationRepo repository.EvaluationRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo, evaluationRepo: evaluationRepo}
}

func (s *catalogService) CreateCategory(ctx context.Context, req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error) {
	if req.EvaluationID != nil {
		if _, err := s.evaluationRepo.FindByID(ctx, *req.EvaluationID); err != nil {
			return nil, lookupErr(err, "evaluation", *req.EvaluationID)
		}
	}
	category := model.BookCategory{Name: req.Name, EvaluationID: req.EvaluationID}
	if err := s.bookRepo.CreateCategory(ctx, &category); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create category")
		return nil, writeErr(err, "category "+req.Name)
	}
	log.Info().Uint("categoryID", category.ID).Str("name", category.Name).Msg("Category created")

	var resp dto.CategoryResponseDTO
	copier.Copy(&resp, &category)
	return &resp, nil
}

func (s *catalogService) CreateBook(ctx context.Context, req dto.BookCreateDTO) (*dto.BookResponseDTO, error) {
	ids := uniqueIDs(req.CategoryIDs)
	categories, err := s.bookRepo.FindCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) != len(ids) {
		found := make(map[uint]bool, len(categories))
		for _, c := range categories {
			found[c.ID] = true
		}
		var details []string
		for _, id := range ids {
			if !found[id] {
				details = append(details, fmt.Sprintf("category %d not found", id))
			}
		}
		return nil, &apperr.Error{Code: apperr.CodeInvalid, Message: "unknown categories", Details: details}
	}

	book := model.Book{
		Title:              req.Title,
		Author:             req.Author,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Categories:         categories,
	}
	if err := s.bookRepo.Create(ctx, &book); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create book")
		return nil, writeErr(err, "book "+req.Title)
	}
	log.Info().Uint("bookID", book.ID).Int("categories", len(categories)).Msg("Book created")
	return s.GetBook(ctx, book.ID)
}

func (s *catalogService) GetBook(ctx context.Context, id uint) (*dto.BookResponseDTO, error) {
	book, err := s.bookRepo.FindByIDWithCategories(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "book", id)
	}
	var resp dto.BookResponseDTO
	copier.Copy(&resp, book)
	return &resp, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
