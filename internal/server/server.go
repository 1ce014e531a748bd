package server

// Server combines the entity-specific servers behind one router.
type Server struct {
	DealsServer
	CatalogServer
}

func NewServer(
	dealsServer DealsServer,
	catalogServer CatalogServer,
) Server {
	return Server{
		DealsServer:   dealsServer,
		CatalogServer: catalogServer,
	}
}
