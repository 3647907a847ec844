// Package identity provides local-credential authentication primitives:
// account registration, credential verification, and issuance of signed
// bearer tokens carrying identity and role claims.
//
// Token codec:
//   - TokenService signs HS256 JWTs whose claim set embeds the username as
//     subject, the identity id, email, role names, issuance and expiry
//     timestamps, and a random jti. Validation is stateless and classifies
//     failures as malformed, bad signature, expired, or unsupported so
//     callers can react without parsing messages.
//
// Authentication:
//   - Auther orchestrates login: UserProvider resolves the identifier
//     against the Users repository, compares the bcrypt hash, and returns an
//     Identity; the token service turns it into a bearer token. Unknown
//     identifiers and wrong passwords are deliberately indistinguishable.
//
// Registration:
//   - RegisterUserHandler runs uniqueness pre-checks, hashes the password,
//     attaches the default role, and persists the user in one transaction.
//     The store's unique constraints decide races; the pre-checks only give
//     friendlier errors on the common path.
package identity
