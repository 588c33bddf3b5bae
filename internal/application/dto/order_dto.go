package dto

// SubmitOrderRequest cuerpo de POST /order/manage/submit (rol user).
type SubmitOrderRequest struct {
	ProductsID string `json:"products_id"`
	Count      int    `json:"count"`
}

// AdminCreateOrderRequest cuerpo de POST /order/manage/create (rol admin).
// BuyTime acepta "2006-01-02" o "2006-01-02 15:04:05"; vacío = ahora.
type AdminCreateOrderRequest struct {
	UserID     string `json:"user_id"`
	ProductsID string `json:"products_id"`
	Count      int    `json:"count"`
	Status     *int   `json:"status,omitempty"`
	BuyTime    string `json:"buy_time,omitempty"`
}

// AdminUpdateOrderRequest cuerpo de POST /order/manage/update (rol admin).
// Actualización parcial fuertemente tipada: solo status, products_id y count
// son mutables; al menos uno debe venir.
type AdminUpdateOrderRequest struct {
	ID         string  `json:"id"`
	Status     *int    `json:"status,omitempty"`
	ProductsID *string `json:"products_id,omitempty"`
	Count      *int    `json:"count,omitempty"`
}

// OrderIDRequest cuerpo de cancel/delete: solo el id del pedido.
type OrderIDRequest struct {
	ID string `json:"id"`
}

// OrderListItem fila del listado de pedidos con el contacto del dueño.
type OrderListItem struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	ProductsID  string `json:"products_id"`
	Count       int    `json:"count"`
	Status      int    `json:"status"`
	StatusLabel string `json:"status_label"`
	BuyTime     string `json:"buy_time"`
	UserName    string `json:"user_name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

// OrderListResponse listado de pedidos según el rol del solicitante.
type OrderListResponse struct {
	Total  int             `json:"total"`
	Orders []OrderListItem `json:"orders"`
}
