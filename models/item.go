package models

// Item is the catalog record returned by the item service.
// Image holds a comma-separated list of URLs; the first one is the primary image.
type Item struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	SellPoint string `json:"sellPoint"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
}

// ItemResult is the envelope the item service wraps every response in.
type ItemResult struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
	Data   *Item  `json:"data"`
}
