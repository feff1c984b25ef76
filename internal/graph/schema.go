// Package graph содержит GraphQL-схему ArcadeDex и ее резолверы.
package graph

import graphql "github.com/graph-gophers/graphql-go"

// Schema — GraphQL-схема API. Поля разрешаются методами Resolver
// и полями view-структур (UseFieldResolvers).
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		getUser: UserPayload!
		getUserGames: [Game!]!
		listGames(page: Int, perPage: Int): [Game!]!
	}

	type Mutation {
		registerUser(username: String!, email: String!, password: String!): AuthPayload!
		loginUser(email: String!, password: String!): AuthPayload!
		logoutUser: AuthPayload!
		addGame: MessagePayload!
		trackGame(gameId: ID!): Game!
		importGame(slug: String!): MessagePayload!
	}

	type User {
		id: ID!
		username: String!
		email: String!
	}

	type Game {
		id: ID!
		slug: String!
		title: String!
		description: String
		releasedAt: String
		rating: Float
		coverUrl: String
	}

	type AuthPayload {
		message: String!
		user: User
	}

	type UserPayload {
		user: User
	}

	type MessagePayload {
		message: String!
	}
`

// MustSchema парсит схему с привязкой к резолверу. Паника при несовпадении
// схемы и резолвера — ошибка программиста, ловится любым тестом пакета.
func MustSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r, graphql.UseFieldResolvers())
}
