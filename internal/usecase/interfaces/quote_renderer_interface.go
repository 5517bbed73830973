package interfaces

import "gerador_orcamentos/internal/domain/entities"

//go:generate mockgen -source=quote_renderer_interface.go -destination=mocks/quote_renderer_interface_mock.go -package=mock_interfaces

// IQuoteRenderer turns a normalized QuoteDocument into PDF bytes.
//
// Implementations validate the document before drawing and return either the
// complete file or an error, never partial output.
type IQuoteRenderer interface {
	Path() entities.RenderPath
	Render(doc entities.QuoteDocument, gen entities.GenerationContext) ([]byte, error)
}
