package handlers

import (
	"net/http"

	"github.com/ecobytes/site-api/internal/catalog"
	"github.com/gin-gonic/gin"
)

// ProductResponse is a product as shown in the quote form.
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Unit     string `json:"unidade,omitempty"`
	Variable bool   `json:"unidade_variavel"`
}

// ProductListResponse lists the products and the units a variable product
// can be quoted in.
type ProductListResponse struct {
	Products []ProductResponse `json:"produtos"`
	Units    []string          `json:"unidades"`
}

// CatalogHandlers serves the product catalog.
type CatalogHandlers struct {
	catalog *catalog.Catalog
}

func NewCatalogHandlers(cat *catalog.Catalog) *CatalogHandlers {
	return &CatalogHandlers{catalog: cat}
}

// ListProducts godoc
// @Summary Lista os produtos
// @Tags catalog
// @Produce json
// @Success 200 {object} ProductListResponse
// @Router /catalog/products [get]
func (h *CatalogHandlers) ListProducts(c *gin.Context) {
	products := h.catalog.Products()
	resp := ProductListResponse{
		Products: make([]ProductResponse, 0, len(products)),
		Units:    h.catalog.Units(),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Unit:     p.Unit,
			Variable: p.Variable(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetUnit godoc
// @Summary Unidade de medida do produto
// @Description Retorna a unidade em que a quantidade do produto é informada e o texto de ajuda do campo.
// @Tags catalog
// @Produce json
// @Param produto query string true "Identificador do produto" example(sacolas)
// @Param unidade query string false "Unidade escolhida, usada por produtos de unidade variável"
// @Success 200 {object} catalog.UnitInfo
// @Failure 400 {object} ErrorResponse
// @Router /catalog/unit [get]
func (h *CatalogHandlers) GetUnit(c *gin.Context) {
	produto := c.Query("produto")
	if produto == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "parâmetro produto é obrigatório"})
		return
	}
	c.JSON(http.StatusOK, h.catalog.Resolve(produto, c.Query("unidade")))
}
