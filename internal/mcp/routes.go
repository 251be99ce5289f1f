package mcp

import "net/http"

func SubscriberRoutes() []Route {
	return []Route{
		{Path: "/subscribers", Method: http.MethodGet, Handler: listSubscribers},
		{Path: "/subscribers/{id}", Method: http.MethodGet, Handler: getSubscriber},
		{Path: "/subscribers", Method: http.MethodPost, Handler: createSubscriber},
		{Path: "/subscribers/{id}", Method: http.MethodPut, Handler: updateSubscriber},
		{Path: "/subscribers/{id}", Method: http.MethodDelete, Handler: deleteSubscriber},
	}
}

func TagRoutes() []Route {
	return []Route{
		{Path: "/tags", Method: http.MethodGet, Handler: listTags},
		{Path: "/tags", Method: http.MethodPost, Handler: createTag},
	}
}

func CampaignRoutes() []Route {
	return []Route{
		{Path: "/campaigns", Method: http.MethodGet, Handler: listCampaigns},
	}
}

func CustomFieldRoutes() []Route {
	return []Route{
		{Path: "/fields", Method: http.MethodGet, Handler: listCustomFields},
		{Path: "/fields", Method: http.MethodPost, Handler: createCustomField},
	}
}

func AutomationRoutes() []Route {
	return []Route{
		{Path: "/automations", Method: http.MethodGet, Handler: listAutomations},
	}
}

func TransactionRoutes() []Route {
	return []Route{
		{Path: "/transactions", Method: http.MethodGet, Handler: listTransactions},
	}
}

// DefaultRoutes devolve a tabela completa de rotas do Rule.io
func DefaultRoutes() []Route {
	var routes []Route
	routes = append(routes, SubscriberRoutes()...)
	routes = append(routes, TagRoutes()...)
	routes = append(routes, CampaignRoutes()...)
	routes = append(routes, CustomFieldRoutes()...)
	routes = append(routes, AutomationRoutes()...)
	routes = append(routes, TransactionRoutes()...)
	return routes
}
