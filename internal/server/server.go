package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	RatesServer
	StatusServer
}

func NewServer(
	ratesServer RatesServer,
	statusServer StatusServer,
) Server {
	return Server{
		RatesServer:  ratesServer,
		StatusServer: statusServer,
	}
}
