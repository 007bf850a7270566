package api

// MilestoneEventIDs are the backend events whose event_user rows carry the
// user's level.
var MilestoneEventIDs = []int{20, 72, 250}

// Fixed queries used by the client.
const (
	QueryUserID = `query { user { id } }`

	QueryUserProfile = `
query GetUserProfile($userId: Int!) {
    user(where: { id: { _eq: $userId } }) {
        login
        firstName
        lastName
        auditRatio
        totalUp
        totalDown
        email
        attrs
        campus
        id
    }
    event_user(where: { userId: { _eq: $userId }, eventId: { _in: [20, 72, 250] } }) {
        level
    }
}`

	QueryUserLevel = `
query GetUserLevel($userId: Int!) {
    event_user(where: { userId: { _eq: $userId }, eventId: { _in: [20, 72, 250] } }) {
        level
        userId
        eventId
    }
}`

	QueryXP = `
query {
    transaction(where: {type: {_eq: "xp"}}, order_by: {createdAt: asc}) {
        id
        type
        amount
        objectId
        createdAt
        path
    }
}`

	QueryAudits = `
query {
    transaction(where: {type: {_eq: "up"}}, order_by: {createdAt: asc}) {
        id
        type
        amount
        objectId
        createdAt
        path
    }
}`

	QuerySkills = `
query {
    transaction(where: { type: { _regex: "skill" } }) {
        amount
        type
        objectId
    }
}`

	QueryGrades = `
query {
    progress {
        path
        grade
        createdAt
        object {
            name
        }
    }
}`
)
