package models

// MotoCliente represents a client-owned motorcycle
type MotoCliente struct {
	IDMotoCliente int      `json:"id_moto_cliente"`
	Marca         string   `json:"marca"`
	Modelo        string   `json:"modelo"`
	Ano           int      `json:"ano"`
	Placa         string   `json:"placa"`
	IDCliente     int      `json:"id_cliente"`
	Cliente       *Cliente `json:"cliente,omitempty"`
}

// MotoMercado represents a motorcycle model known to the market catalog
type MotoMercado struct {
	IDMotoMercado int    `json:"id_moto_mercado"`
	Modelo        string `json:"modelo"`
}
