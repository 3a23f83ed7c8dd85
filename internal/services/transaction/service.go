package transaction

import (
	"context"
	"path/filepath"
	"strconv"

	"chargili/internal/apiclient"
	"chargili/internal/models"
)

// DefaultExportName is used when neither the API nor the operator named the file.
const DefaultExportName = "transactions_export"

const defaultPageSize = 10

type Service interface {
	Filter(ctx context.Context, filter models.TransactionFilter) (*models.Page[models.Transaction], error)
	ListByAgent(ctx context.Context, agentID int64, filter models.TransactionFilter) (*models.Page[models.Transaction], error)
	ListAutomatic(ctx context.Context, filter models.TransactionFilter) (*models.Page[models.Transaction], error)
	Get(ctx context.Context, id int64) (*models.TransactionDetails, error)
	UpdateStatus(ctx context.Context, id int64, update models.TransactionStatusUpdate) (*models.TransactionDetails, error)
	Assign(ctx context.Context, id int64, agentID int64) (*models.TransactionDetails, error)
	Export(ctx context.Context, req models.ExportRequest) (*models.ExportFile, error)
}

type service struct {
	transactions *apiclient.Resource
}

func NewService(api *apiclient.Client) Service {
	return &service{transactions: api.Resource(apiclient.Backoffice+"/transactions", "Erreur lors de la gestion des transactions")}
}

func (s *service) Filter(ctx context.Context, filter models.TransactionFilter) (*models.Page[models.Transaction], error) {
	return s.page(ctx, "/filter", filter)
}

func (s *service) ListByAgent(ctx context.Context, agentID int64, filter models.TransactionFilter) (*models.Page[models.Transaction], error) {
	return s.page(ctx, "/agent/"+strconv.FormatInt(agentID, 10)+"/filter", filter)
}

func (s *service) ListAutomatic(ctx context.Context, filter models.TransactionFilter) (*models.Page[models.Transaction], error) {
	return s.page(ctx, "/automatic/filter", filter)
}

func (s *service) page(ctx context.Context, path string, filter models.TransactionFilter) (*models.Page[models.Transaction], error) {
	if filter.Size <= 0 {
		filter.Size = defaultPageSize
	}
	if filter.Page < 0 {
		filter.Page = 0
	}

	var out models.Page[models.Transaction]
	if err := s.transactions.With("Erreur lors de la récupération des transactions").Post(ctx, path, filter, &out); err != nil {
		return nil, err
	}
	if out.Content == nil {
		out.Content = []models.Transaction{}
	}
	return &out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*models.TransactionDetails, error) {
	var out models.TransactionDetails
	if err := s.transactions.With("Transaction introuvable").Get(ctx, path(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, update models.TransactionStatusUpdate) (*models.TransactionDetails, error) {
	var out models.TransactionDetails
	err := s.transactions.With("Erreur lors de la mise à jour du statut de la transaction").
		Put(ctx, path(id)+"/status", update, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) Assign(ctx context.Context, id int64, agentID int64) (*models.TransactionDetails, error) {
	var out models.TransactionDetails
	err := s.transactions.With("Erreur lors de l'assignation de la transaction").
		Put(ctx, path(id)+"/assign", models.AssignRequest{AgentID: agentID}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Export downloads the filtered transactions in the requested format.
func (s *service) Export(ctx context.Context, req models.ExportRequest) (*models.ExportFile, error) {
	resp, err := s.transactions.With("Erreur lors de l'export des transactions").Download(ctx, "/export", req)
	if err != nil {
		return nil, err
	}

	return &models.ExportFile{
		Filename:    ExportFilename(apiclient.FilenameFrom(resp.Disposition), req.NomFichier, req.Format),
		ContentType: resp.ContentType,
		Data:        resp.Body,
	}, nil
}

// ExportFilename picks the server name, then the requested one, then the default,
// appending the format extension when the chosen name has none.
func ExportFilename(server, requested string, format models.ExportFormat) string {
	name := server
	if name == "" {
		name = requested
	}
	if name == "" {
		name = DefaultExportName
	}
	if filepath.Ext(name) == "" {
		name += format.Extension()
	}
	return name
}

func path(id int64) string {
	return "/" + strconv.FormatInt(id, 10)
}
